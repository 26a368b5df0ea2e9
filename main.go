package main

import "github.com/killallgit/fanboy/cmd"

// @title           Fanboy Gateway API
// @version         1.0.0
// @description     REST gateway for the fanboy podcast search service
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/fanboy
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
