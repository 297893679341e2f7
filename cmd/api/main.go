package main

import (
	"fmt"
	"os"
)

// @title           KundliVision API
// @version         1.0
// @description     Astrology content, consultations and divination API.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
