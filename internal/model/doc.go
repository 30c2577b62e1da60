// Package model defines the records shared between the Numbeo client and the report renderer.
//
// Conventions:
//   - Item identity: integer item_id assigned by Numbeo, unique within the catalog
//   - Prices: shopspring decimal values; an invalid NullDecimal means the API sent null
//   - Currency: ISO 4217 code reported once per city and copied onto each observation
package model
