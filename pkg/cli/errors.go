package cli

import "github.com/m-mizutani/goerr/v2"

var (
	ErrNoInput        = goerr.New("no input file")
	ErrOutputRequired = goerr.New("output path is required for binary report format")
	ErrRecordNotFound = goerr.New("assessment record not found")
)
