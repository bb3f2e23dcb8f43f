// Package forage provides an offline batch harvester for a scraped wiki and
// forum archive. It extracts structured records from saved HTML pages (forum
// topics with posts and quotes, wiki pages with categories, links, and
// rendered tables) and repackages them into flat datasets: per-page JSON,
// delimited text artifacts, CSV indexes, and a SQLite dataset container.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/) or function
// (e.g., batch/, crawl/).
package forage
