package main

import "procurement-management-api/app"

func main() {
	app.Run()
}
