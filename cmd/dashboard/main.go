// Package main is the entry point of the rickshaw analytics dashboard.
package main

func main() {
	Execute()
}
