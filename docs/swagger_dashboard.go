package docs

// @title           Rickshaw Analytics Dashboard API
// @version         1.0
// @description     Read-only access to the rickshaw search-to-quote funnel dataset and to the dashboard views built from it. Chart options are ECharts option trees.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
