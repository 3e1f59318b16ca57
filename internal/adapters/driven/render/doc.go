// Package render writes search result rows as a table, markdown, CSV or JSON.
package render
