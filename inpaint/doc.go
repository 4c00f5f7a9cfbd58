// Package inpaint - reconstructs masked regions of a raster image with the
// Fast Marching Method described by Telea (2004).
//
// The fill order comes from a narrow band of boundary pixels sorted by their
// distance to the initial mask contour. Each pixel leaving the band has its
// unknown neighbors resolved: their distance is solved from the eikonal
// equation and their color is the weighted average of the already known
// pixels in a disk of the configured radius.
//
// A single call is sequential and owns all of its working state. Independent
// images may be processed concurrently by the caller.
package inpaint
