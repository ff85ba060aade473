package geom_test

import (
	"fmt"

	"github.com/matzehuels/yui/pkg/geom"
)

func ExampleRect_CutTop() {
	r := geom.MustNew(640, 480)
	header, _ := r.CutTop(10)

	fmt.Println("header:", header)
	fmt.Println("rest:", r)
	// Output:
	// header: 640x10@(0,0)
	// rest: 640x470@(0,10)
}

func ExampleRect_DivideVertically() {
	rows, _ := geom.MustNew(640, 480).DivideVertically(3)
	for _, row := range rows {
		fmt.Println(row)
	}
	// Output:
	// 640x160@(0,0)
	// 640x160@(0,160)
	// 640x160@(0,320)
}
