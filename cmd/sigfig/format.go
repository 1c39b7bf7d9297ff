package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/avdva/sigfig"
)

func formatOne(w io.Writer, word string, precision int, style sigfig.Style) error {
	f, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return fmt.Errorf("parse %q: %w", word, err)
	}
	s, err := sigfig.Format(f, precision, style)
	if err != nil {
		return fmt.Errorf("format %q: %w", word, err)
	}
	if _, err := fmt.Fprintln(w, s); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func formatArgs(w io.Writer, args []string, precision int, style sigfig.Style) error {
	for _, arg := range args {
		if err := formatOne(w, arg, precision, style); err != nil {
			return err
		}
	}
	return nil
}

func formatStream(w io.Writer, r io.Reader, precision int, style sigfig.Style) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if err := formatOne(w, scanner.Text(), precision, style); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return nil
}
