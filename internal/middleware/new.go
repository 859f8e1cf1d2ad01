package middleware

import (
	"github.com/Aashutosh2004011/TaskManagement-Backend/config"
	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
