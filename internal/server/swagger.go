package server

//go:generate swag init --generalInfo swagger.go --dir ./,../model,../material --output ../../docs

// @title			CNC Intake API
// @version		1.0
// @description	Upload CAD files for triage: format identification, geometry
// @description	metric extraction, and quote risk/confidence scoring.
// @BasePath		/
