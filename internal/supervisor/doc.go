// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package supervisor provides process supervision for CineRank using suture v4.

Long-running services are organized into two layers so a failure in one does
not take down the other:

	RootSupervisor ("cinerank")
	├── DataSupervisor ("data-layer")
	│   └── DatabaseHealthService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Canceling the context
passed to Serve shuts the tree down, giving each service ShutdownTimeout to
return.

Supervisor events (starts, failures, backoff) are logged through sutureslog,
which speaks slog. logging.NewSlogLogger bridges that onto zerolog:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewDatabaseHealthService(db, time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout, logger))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
