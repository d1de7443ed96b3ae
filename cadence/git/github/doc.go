// Package github resolves repository information on GitHub and GitHub
// Enterprise using the official REST client.
package github
