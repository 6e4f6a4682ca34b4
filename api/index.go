package handler

import (
	"net/http"
	"sync"

	"clearance/config"
	"clearance/di"
	"clearance/shared/logger"
	transport "clearance/transport/http"
)

var (
	server     *transport.HTTP
	serverOnce sync.Once
)

// Handler is the serverless entrypoint. The service graph is built on the
// first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	serverOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
