package main

import "registration-form-app/config"

func main() {
	config.RunServer()
}
