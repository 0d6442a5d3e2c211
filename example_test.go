package fse

import (
	"fmt"
)

func Example() {
	data := []byte("finite state entropy squeezes skewed byte streams")
	frame := Compress(data, 4)
	orig, err := Decompress(frame, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(orig))
	// Output:
	// finite state entropy squeezes skewed byte streams
}
