// Package secscan scans source trees for security anti-patterns with a fixed
// regex catalog and reports normalized findings. Critical findings drive the
// process exit code.
package secscan

import "regexp"

// Pattern is one security rule in the catalog.
type Pattern struct {
	ID       string
	Name     string
	Pattern  *regexp.Regexp
	Severity int // normalized 1-10; >= 9 is critical
	Fix      string
}

var patterns = []Pattern{
	{
		ID: "SEC001", Name: "AWS access key",
		Pattern:  regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
		Severity: 10,
		Fix:      "revoke the key and move credentials to a secret manager",
	},
	{
		ID: "SEC002", Name: "Private key block",
		Pattern:  regexp.MustCompile(`-----BEGIN\s+(RSA|DSA|EC|OPENSSH|PGP)?\s*PRIVATE KEY-----`),
		Severity: 10,
		Fix:      "remove the key from the repository and rotate it",
	},
	{
		ID: "SEC003", Name: "Hardcoded password",
		Pattern:  regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[=:]\s*['"][^'"]{4,}['"]`),
		Severity: 9,
		Fix:      "read the password from the environment or a secret store",
	},
	{
		ID: "SEC004", Name: "Hardcoded API key",
		Pattern:  regexp.MustCompile(`(?i)(api[_-]?key|apikey|secret[_-]?key|auth[_-]?token)\s*[=:]\s*['"][A-Za-z0-9_\-]{16,}['"]`),
		Severity: 9,
		Fix:      "move the key out of source control",
	},
	{
		ID: "SEC005", Name: "SQL built by string concatenation",
		Pattern:  regexp.MustCompile(`(?i)(select|insert|update|delete)\s+.*['"]\s*\+\s*\w+|\+\s*['"]\s*(from|where)\b`),
		Severity: 8,
		Fix:      "use parameterized queries",
	},
	{
		ID: "SEC006", Name: "Weak hash algorithm",
		Pattern:  regexp.MustCompile(`(?i)\b(md5|sha1)\s*\(|crypto/md5|crypto/sha1|hashlib\.(md5|sha1)\b`),
		Severity: 6,
		Fix:      "use SHA-256 or stronger",
	},
	{
		ID: "SEC007", Name: "Insecure HTTP URL",
		Pattern:  regexp.MustCompile(`['"]http://[^'"\s]+['"]`),
		Severity: 4,
		Fix:      "use https",
	},
	{
		ID: "SEC008", Name: "Dynamic code evaluation",
		Pattern:  regexp.MustCompile(`\b(eval|exec)\s*\(`),
		Severity: 7,
		Fix:      "avoid evaluating dynamic strings as code",
	},
	{
		ID: "SEC009", Name: "TLS verification disabled",
		Pattern:  regexp.MustCompile(`(?i)InsecureSkipVerify\s*:\s*true|verify\s*=\s*False|rejectUnauthorized\s*:\s*false`),
		Severity: 8,
		Fix:      "enable certificate verification",
	},
	{
		ID: "SEC010", Name: "Insecure random for secrets",
		Pattern:  regexp.MustCompile(`math/rand|random\.random\(\)|Math\.random\(\)`),
		Severity: 3,
		Fix:      "use a cryptographic random source for secrets",
	},
}

// CriticalSeverity is the threshold at which findings change the exit code.
const CriticalSeverity = 9
