// Command foodfresh tracks perishable food items and the cost of wasted food.
package main

import "github.com/mesh-intelligence/foodfresh/internal/cli"

func main() {
	cli.Execute()
}
