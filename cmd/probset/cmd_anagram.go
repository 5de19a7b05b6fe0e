package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/probset/anagram"
)

var anagramCmd = &cobra.Command{
	Use:   "anagram <s1> <s2>",
	Short: "Check whether two strings are anagrams",
	Long: `Checks whether two strings are anagrams, ignoring case, spaces,
and punctuation. Quote arguments that contain spaces:

  probset anagram "Dormitory" "Dirty room!!"`,
	Args: cobra.ExactArgs(2),
	RunE: runAnagram,
}

func init() {
	rootCmd.AddCommand(anagramCmd)
}

func runAnagram(cmd *cobra.Command, args []string) error {
	s1, s2 := args[0], args[1]
	cmd.Printf("%q and %q are anagrams: %v\n", s1, s2, anagram.IsAnagram(s1, s2))

	return nil
}
