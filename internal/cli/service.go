package cli

import "uv-mirror/internal/app"

func newAppService() app.Service {
	return app.NewService()
}
