package usecase

import "github.com/m-mizutani/goerr/v2"

var (
	ErrRepositoryNotConfigured = goerr.New("repository is not configured")
)
