package di

import (
	"github.com/uubo/memberhub/internal/app"
	"github.com/uubo/memberhub/internal/config"
	"github.com/uubo/memberhub/internal/logger"
	"github.com/uubo/memberhub/internal/pkg/auth"
	"github.com/uubo/memberhub/internal/server/http/handlers"
	"github.com/uubo/memberhub/internal/server/http/router"
	"github.com/uubo/memberhub/internal/storage/postgres"
	"github.com/uubo/memberhub/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.MembershipFacade) handlers.MembershipFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
