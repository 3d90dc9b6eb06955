package enum_test

import (
	"fmt"

	"typekit/enum"
	"typekit/internal/fixture"
)

func ExampleEntries() {
	for _, e := range enum.Entries[fixture.HTTPStatus]() {
		fmt.Println(e.Value, int(e.Value))
	}
	// Output:
	// OK 200
	// Accept 202
	// NotFound 404
}

func ExampleParse() {
	c, ok := enum.Parse[fixture.Color]("Blue")
	fmt.Println(int(c), ok)

	_, ok = enum.Parse[fixture.Color]("Purple")
	fmt.Println(ok)
	// Output:
	// 2 true
	// false
}
