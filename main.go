package main

import (
	"fmt"
	"os"
)

// @title Service Desk API
// @version 1.0
// @description User registration, login and order management.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
