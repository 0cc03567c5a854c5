package util

import (
	"fmt"
	"math/rand"
)

var names = []string{
	"Dog",
	"Cat",
	"Frog",
	"Otter",
	"Heron",
	"Lynx",
	"Mole",
	"Wren",
}

func GenerateAlias() string {
	return fmt.Sprintf("Viewer %v%v", names[rand.Intn(len(names))], rand.Intn(1000))
}
