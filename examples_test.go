package jotson

import (
	"fmt"
	"os"
)

func ExampleReader_Parse() {
	reader := NewReader()
	root := NewNull()
	reader.ParseString(`{"name":"Ann","tags":["a","b"]}`, root, false)

	fmt.Println(root.Member("name").AsString())
	fmt.Println(root.Member("tags").Size())
	// Output:
	// Ann
	// 2
}

func ExampleReader_FormattedErrorMessages() {
	reader := NewReader()
	root := NewNull()
	if !reader.ParseString(`{"a" 1}`, root, false) {
		fmt.Print(reader.FormattedErrorMessages())
	}
	// Output:
	// * Line 1, Column 6
	//   Missing ':' after object member name
}

func ExampleCompactWriter() {
	root := NewObject()
	root.Member("id").SetInt(7)
	root.Member("ok").SetBool(true)

	var w CompactWriter
	fmt.Print(w.Write(root))
	// Output:
	// {"id":7,"ok":true}
}

func ExampleStyledWriter() {
	reader := NewReader()
	root := NewNull()
	reader.ParseString(`{"name":"Ann","age":37}`, root, false)

	fmt.Print(NewStyledWriter().Write(root))
	// Output:
	// {
	//    "name" : "Ann",
	//    "age" : 37
	// }
}

func ExampleStyledStreamWriter() {
	root := NewObject()
	root.Member("level").SetString("info")

	w := NewStyledStreamWriter("  ")
	_ = w.Write(os.Stdout, root)
	// Output:
	// {
	//   "level" : "info"
	// }
}
