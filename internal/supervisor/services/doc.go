// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

/*
Package services adapts AgriSensa components to suture.Service.

  - HTTPServerService runs the HTTP server and shuts it down gracefully
    when the supervisor stops.
  - DatasetService loads datasets on start, reloads them on a schedule
    and reloads them when a watched file changes.

Every service returns ctx.Err() when its context is canceled and
implements fmt.Stringer so suture can name it in log messages.

Wiring in main:

	tree.AddDataService(services.NewDatasetService(reloader, services.DatasetServiceConfig{
	    ReloadOnStart:  true,
	    ReloadInterval: cfg.Datasets.ReloadInterval,
	    WatchFiles:     watchFiles,
	    WatchDebounce:  cfg.Datasets.WatchDebounce,
	}, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
*/
package services
