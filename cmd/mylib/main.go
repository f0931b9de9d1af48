package main

import (
	"go.brendoncarroll.net/star"

	"github.com/oilgo/mylib/mylibcmd"
)

func main() {
	star.Main(mylibcmd.Root())
}
