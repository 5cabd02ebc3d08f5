package config

const HelpMessage = `Rickshaw funnel analytics dashboard.

Reads the pre-computed search-to-quote dataset once at startup and serves
the Summary, By Hour, By Distance, By Fare and By Pickup Distance views.

Configuration is read from config.yaml (or --config), .env and the
environment. Environment variables take precedence:

  SERVER_HOST, SERVER_PORT, SERVER_SHUTDOWN_TIMEOUT
  DATASET_SOURCE        file path or http(s) URL of data.json
  DASHBOARD_TITLE, DASHBOARD_ASSETS_HOST
  LOG_LEVEL             DEBUG, INFO, WARN or ERROR
`
