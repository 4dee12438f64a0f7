package domain

// ShippingAddress is the unstructured address document submitted by the
// storefront checkout. The shape is not enforced; accessors paper over the
// field-name variants different checkout versions have sent.
type ShippingAddress map[string]any

func (a ShippingAddress) str(keys ...string) string {
	for _, k := range keys {
		if v, ok := a[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Name returns the customer name (name, falling back to firstName).
func (a ShippingAddress) Name() string {
	return a.str("name", "firstName")
}

// Email returns the customer email (email, falling back to emailAddress).
func (a ShippingAddress) Email() string {
	return a.str("email", "emailAddress")
}

// Phone returns the customer phone number.
func (a ShippingAddress) Phone() string {
	return a.str("phone")
}

// Address returns the street address line.
func (a ShippingAddress) Address() string {
	return a.str("address")
}

// City returns the city.
func (a ShippingAddress) City() string {
	return a.str("city")
}

// State returns the state.
func (a ShippingAddress) State() string {
	return a.str("state")
}

// Pin returns the postal PIN code.
func (a ShippingAddress) Pin() string {
	return a.str("pin")
}
