package types

const (
	ActionDatasetLoad     = "dataset_load"
	ActionDatasetReady    = "dataset_ready"
	ActionDatasetFailed   = "dataset_failed"
	ActionDatasetAudit    = "dataset_audit"
	ActionRenderView      = "render_view"
	ActionRenderAPIView   = "render_api_view"
	ActionGetDataset      = "get_dataset"
	ActionHealthCheck     = "health_check"
	ActionExportDashboard = "export_dashboard"
)
