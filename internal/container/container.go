package container

import (
	app "toon-face/internal/application"
	"toon-face/internal/domain/port"
)

type Container struct {
	UserService  *app.UserService
	ToonService  *app.ToonService
	BatchService *app.BatchService
}

func New(userRepo port.UserRepository, detector port.FeatureDetector, opts app.ToonOptions) *Container {
	userService := app.NewUserService(userRepo)
	toonService := app.NewToonService(detector, opts)

	return &Container{
		UserService:  userService,
		ToonService:  toonService,
		BatchService: app.NewBatchService(toonService),
	}
}
