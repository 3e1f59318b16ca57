// Package connectors holds clients for the code hosts that can be searched.
// Each connector implements the driven ProjectLister and BlobSearcher ports.
package connectors
