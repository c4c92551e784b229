// Package cardlist extracts trading-card metadata from saved card list pages
// and normalizes it into flat and component-array CSV files for bulk import
// into a headless CMS.
//
// This package contains domain types, pure transformations and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/, csv/,
// sqlite/).
package cardlist
