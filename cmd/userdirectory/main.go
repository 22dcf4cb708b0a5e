package main

import "github.com/cleitonmarx/symbiont-userdirectory/internal/app"

func main() {
	err := app.NewUserDirectoryApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
