package tables

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadDomainList reads one domain per line from path. Blank lines and
// lines starting with # are skipped.
func ReadDomainList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open domain list %s: %w", path, err)
	}
	defer file.Close()

	domains, err := parseDomainList(file)
	if err != nil {
		return nil, fmt.Errorf("error reading domain list %s: %w", path, err)
	}
	if len(domains) == 0 {
		return nil, fmt.Errorf("domain list %s is empty", path)
	}
	return domains, nil
}

func parseDomainList(r io.Reader) ([]string, error) {
	var domains []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains = append(domains, line)
	}

	return domains, scanner.Err()
}
