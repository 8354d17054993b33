package timeline

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Motif.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Warm gradient (amber to rose)
	s1 := termenv.String("                   _   _  __ ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("  _ __ ___   ___  | |_(_)/ _|").Foreground(p.Color("#f59e0b"))
	s3 := termenv.String(" | '_ ` _ \\ / _ \\ | __| | |_ ").Foreground(p.Color("#f97316"))
	s4 := termenv.String(" | | | | | | (_) || |_| |  _|").Foreground(p.Color("#fb7185"))
	s5 := termenv.String(" |_| |_| |_|\\___/  \\__|_|_|  ").Foreground(p.Color("#f43f5e"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
