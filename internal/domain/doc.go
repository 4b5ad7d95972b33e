package domain

// Package domain contains the core business concepts for the md2pdf service.
// Keep this package free of transport (HTTP) and infrastructure
// (subprocess/filesystem) concerns.
