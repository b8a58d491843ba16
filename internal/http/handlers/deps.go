package handlers

import (
	"employeehub/internal/config"
	"employeehub/internal/repos"
	"employeehub/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth  *services.AuthService
	Users *services.UserService

	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	EmployeeHandler *EmployeeHandler
	TaskHandler     *TaskHandler
	PaymentHandler  *PaymentHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService, bridge services.IntentCreator) *Deps {
	userRepo := repos.NewUserRepo(db)
	taskRepo := repos.NewTaskRepo(db)
	payRepo := repos.NewPaymentRepo(db)

	userSvc := services.NewUserService(userRepo)
	taskSvc := services.NewTaskService(taskRepo)
	paySvc := services.NewPaymentService(payRepo, bridge, cfg.Currency)

	return &Deps{
		Auth:            auth,
		Users:           userSvc,
		AuthHandler:     &AuthHandler{Auth: auth},
		UserHandler:     &UserHandler{Users: userSvc},
		EmployeeHandler: &EmployeeHandler{Users: userSvc},
		TaskHandler:     &TaskHandler{Tasks: taskSvc},
		PaymentHandler:  &PaymentHandler{Payments: paySvc},
	}
}
