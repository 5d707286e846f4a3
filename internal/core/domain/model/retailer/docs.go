// Package retailer provides the Retailer aggregate: the retail outlets whose
// uploaded orders the tracking workflow governs. Orders reference a retailer
// by ID; the retailer's contact email is used by the notification subsystem.
package retailer
