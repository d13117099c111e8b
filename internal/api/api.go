package api

import (
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
)

type API struct {
	Db *mongodb.DB
}

func NewAPI(db *mongodb.DB) *API {
	return &API{Db: db}
}
