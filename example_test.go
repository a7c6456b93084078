package linelog_test

import (
	"fmt"
	"os"

	"github.com/bjaus/linelog"
)

func ExampleNew() {
	log, err := linelog.New(
		linelog.WithTag("worker"),
		linelog.WithTimestamp(false),
		linelog.WithFilename(false),
		linelog.WithColor(false),
		linelog.WithoutProjectFile(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = log.Success("done: %a", "task1")
	_ = log.Warn("%a retries left", "2")
	// Output:
	// [WORKER] SUCCESS   : done: task1
	// [WORKER] WARN      : 2 retries left
}

func ExampleLogger_Kind() {
	log, err := linelog.New(
		linelog.WithKind("info", linelog.Kind{Tag: "info", Color: "cyan"}),
		linelog.WithTimestamp(false),
		linelog.WithFilename(false),
		linelog.WithTagLength(6),
		linelog.WithColor(false),
		linelog.WithoutProjectFile(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	info, err := log.Kind("info")
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = info("listening on %a", ":8080")
	// Output:
	// [MAIN]   INFO      : listening on :8080
}

func ExampleWriteConfig() {
	cfg := linelog.Config{
		Tag:       linelog.String("api"),
		Timestamp: linelog.Bool(false),
		Loggers: map[string]linelog.Kind{
			"info": {Tag: "info", Color: "cyan"},
		},
	}
	if err := linelog.WriteConfig(os.Stdout, linelog.YAML, cfg); err != nil {
		fmt.Println(err)
	}
	// Output:
	// tag: api
	// timestamp: false
	// loggers:
	//   info:
	//     tag: info
	//     color: cyan
}
