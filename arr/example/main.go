package main

import (
	"fmt"

	"github.com/aglyzov/go-arr/arr"
)

func main() {
	conf := arr.New()
	conf.Set("server.host", "localhost")
	conf.Set("server.port", 8080)
	conf.Set("debug", true)
	conf.Set("tags.0", "web")
	conf.Set("tags.1", "api")

	fmt.Println("host:", conf.GetString("server.host", ""))
	fmt.Println("port:", conf.GetInt("server.port", 80))
	fmt.Println("timeout:", conf.GetInt("server.timeout", 30)) // falls back

	// a literal dotted key (created with Put) shadows the path form
	conf.Set("server", arr.New().Put("weird.key", 1))
	sub := conf.Get("server", nil).(*arr.Arr)
	fmt.Println("literal:", sub.Get("weird.key", nil))

	vals := conf.GetAll([]arr.Spec{
		arr.KD("debug", false),
		arr.K("missing"),
	}, "n/a")
	fmt.Println("bulk:", vals)

	nums := arr.New()
	nums.Set("c", 3).Set("a", 1).Set("b", 2)

	if _, err := nums.Sort(arr.ByNamedStrategy(arr.ValuesKeepKeys, 0)); err != nil {
		panic(err)
	}
	nums.Iter(func(item arr.Item) bool {
		fmt.Printf("%s=%v\n", item.Key, item.Val)
		return true
	})

	// user-driven strategies need a comparator
	_, err := nums.Sort(arr.ByNamedStrategy(arr.UValues, 0))
	fmt.Println("err:", err)

	desc := func(x, y interface{}) int { return y.(int) - x.(int) }
	if _, err := nums.Sort(arr.ByNamedStrategyWithComparator(arr.Values, desc)); err != nil {
		panic(err)
	}
	fmt.Println("desc:", nums.Values())
}
