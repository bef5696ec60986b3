package jsonns_test

import (
	"fmt"

	"github.com/reoring/jsonns"
)

func ExampleProcessor_ProcessBytes() {
	input := []byte(`{"@context": {"foo": "http://example.com/ns#"}, "foo:hello": "world"}`)

	out, err := jsonns.New().ProcessBytes(input)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))

	out, err = jsonns.New().AddRule("bar", "http://example.com/ns#").ProcessBytes(input)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output:
	// {"http://example.com/ns#hello":"world"}
	// {"bar:hello":"world"}
}

func ExampleParseTargetRules() {
	target, err := jsonns.ParseTargetRules("ex: http://example.com/ns#\n: http://schema.org/\n")
	if err != nil {
		panic(err)
	}
	fmt.Println(target.Compact("http://example.com/ns#age"))
	fmt.Println(target.Compact("http://schema.org/name"))
	fmt.Println(target.Compact("urn:isbn:123"))
	// Output:
	// ex:age
	// name
	// urn:isbn:123
}
