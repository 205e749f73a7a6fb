package main

// screensRoot is where the invoicing app lived when the list was put together.
const screensRoot = "/Users/aungheinmynn/Dev/InvoicingApp/src/screens"

// defaultScreens returns the built-in screen list. Each call returns a fresh
// slice so callers can never share (or mutate) a package-level value.
func defaultScreens() Records {
	return Records{
		{Path: screensRoot + "/Invoice/CreateInvoiceScreen.js", Container: "View", LineApprox: 200},
		{Path: screensRoot + "/Product/ProductFormScreen.js", Container: "ScrollView", LineApprox: 260},
		{Path: screensRoot + "/Customer/CustomerFormScreen.js", Container: "ScrollView", LineApprox: 30},
		{Path: screensRoot + "/Customer/CustomerInvoicesScreen.js", Container: "View", LineApprox: 25},
		{Path: screensRoot + "/Category/CategoryListScreen.js", Container: "View", LineApprox: 25},
		{Path: screensRoot + "/Category/CategoryFormScreen.js", Container: "ScrollView", LineApprox: 30},
		{Path: screensRoot + "/Attribute/AttributeListScreen.js", Container: "View", LineApprox: 30},
		{Path: screensRoot + "/Attribute/AttributeFormScreen.js", Container: "ScrollView", LineApprox: 40},
		{Path: screensRoot + "/LoginScreen.js", Container: "View", LineApprox: 20},
	}
}
