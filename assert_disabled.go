//go:build !assert_enabled

package main

// Assert is compiled out unless the assert_enabled tag is set. The arguments
// are still evaluated, so keep them cheap.
func Assert(condition bool) {
}
