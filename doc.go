// Package magazyn implements the stock-keeping engine for a small retail or
// warehouse operation. It is designed to be local-first: the whole catalog
// lives in a single human-readable JSON snapshot that is rewritten after
// every mutation.
//
// The core functionalities include:
//   - Catalog Management: An insertion-ordered collection of stock items,
//     each identified by its barcode (EAN) when present, or by its
//     case-insensitive name otherwise.
//   - Invoice Import: Best-effort extraction of line items from supplier
//     invoice XML feeds, tolerating alternate tag names, missing fields and
//     locale-ambiguous numbers, followed by a merge-on-import reconciliation
//     against the existing catalog.
//   - Price Derivation: Sale prices computed from the purchase price and a
//     configured margin fraction, unless an explicit sale price is supplied.
//   - Data Persistence: Whole-snapshot encoding and decoding of the catalog
//     and of the startup configuration.
//
// This package serves as the foundational logic for the `mgz` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package magazyn
