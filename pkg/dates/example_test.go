package dates_test

import (
	"fmt"

	"github.com/coopcast/flocktree/pkg/dates"
)

func ExampleKey() {
	for _, s := range []string{"3 MAY 2023", "SEP 2024", "2021"} {
		key, _ := dates.Key(s)
		fmt.Println(key)
	}
	// Output:
	// 2023-05-03
	// 2024-09-01
	// 2021-01-01
}

func ExampleSortKey() {
	// Birds without a birth date sort after everyone else.
	fmt.Println(dates.SortKey(""))
	fmt.Println(dates.SortKey("1 JAN 2024") < dates.SortKey(""))
	// Output:
	// 9999
	// true
}

func ExampleYear() {
	fmt.Println(dates.Year("ABT 2019"))
	fmt.Println(dates.Year("unknown"))
	// Output:
	// 2019
	// 0
}
