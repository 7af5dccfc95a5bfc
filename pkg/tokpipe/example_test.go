package tokpipe_test

import (
	"fmt"

	"github.com/tokpipe/tokpipe/pkg/tokpipe"
)

// ExampleNew demonstrates how to embed tokpipe in your application.
func ExampleNew() {
	cfg := tokpipe.DefaultConfig()
	cfg.Message = "the quick   brown fox"

	p, err := tokpipe.New(cfg)
	if err != nil {
		fmt.Printf("failed to create tokpipe: %v\n", err)
		return
	}

	fmt.Println(p.Process(cfg.Message))

	// Output: The quick brown fox
}

// ExampleTokpipe_Process shows the pure transformation entry point.
func ExampleTokpipe_Process() {
	p, err := tokpipe.New(tokpipe.DefaultConfig())
	if err != nil {
		fmt.Printf("failed to create tokpipe: %v\n", err)
		return
	}

	fmt.Println(p.Process("hello,      world!"))
	fmt.Println(p.Process(""))

	// Output:
	// Hello, world!
	//
}
