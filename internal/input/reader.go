package input

import (
	"bufio"
	"os"
	"strings"

	"github.com/user/safebrowse-service/pkg/utils"
)

// ReadURLs reads the input file and returns one normalized URL per
// non-blank line, in file order. A missing file yields an empty list,
// not an error: an absent domain list simply means there is nothing to
// check. Duplicate lines yield duplicate entries.
func ReadURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, utils.NormalizeURL(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}
