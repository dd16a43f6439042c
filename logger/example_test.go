package logger_test

import (
	"os"

	"github.com/Philipp01105/accesslog/filter"
	"github.com/Philipp01105/accesslog/handler"
	"github.com/Philipp01105/accesslog/logger"
)

func Example() {
	log, err := logger.New(logger.Config{
		Format:  "{method} {pathname} {status} IP: {ip}",
		NoColor: true,
		Handler: handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stdout}),
	})
	if err != nil {
		panic(err)
	}
	defer log.Close()

	req := log.Start()
	// ... handle the request ...
	log.Complete(req, logger.Completion{
		Method:   "GET",
		Pathname: "/users",
		Status:   200,
	})

	// Output: GET /users 200 IP: null
}

func Example_filtered() {
	log, err := logger.New(logger.Config{
		Format:  "{method} {pathname} {status}",
		NoColor: true,
		Filter:  &filter.Filter{Status: []int{404, 500}},
		Handler: handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stdout}),
	})
	if err != nil {
		panic(err)
	}
	defer log.Close()

	for _, status := range []int{200, 404, 200, 500} {
		req := log.Start()
		log.Complete(req, logger.Completion{Method: "GET", Pathname: "/x", Status: status})
	}

	// Output:
	// GET /x 404
	// GET /x 500
}
