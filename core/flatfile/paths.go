package flatfile

// Fixed relative paths inside the processing folder. Origin files hold the
// authoritative snapshot of an entity type; new/edit/delete files hold the
// batches applied against it.
const (
	ProductOriginFile  = "InputFolder/products.origin.csv"
	ProductNewFile     = "InputFolder/products.new.csv"
	ProductEditFile    = "InputFolder/products.edit.csv"
	ProductDeleteFile  = "InputFolder/products.delete.csv"
	ProductOutputFile  = "OutputFolder/products.output.csv"
	CustomerOriginFile = "InputFolder/customers.origin.csv"
	CustomerNewFile    = "InputFolder/customers.new.csv"
	CustomerEditFile   = "InputFolder/customers.edit.csv"
	CustomerDeleteFile = "InputFolder/customers.delete.csv"
	CustomerOutputFile = "OutputFolder/customers.output.csv"
	// CustomerUnmatchedFile re-surfaces update rows whose phone number
	// matched no existing customer.
	CustomerUnmatchedFile = "OutputFolder/customers.unmatched.csv"
	OrderOriginFile       = "InputFolder/orders.origin.csv"
	OrderNewFile          = "InputFolder/orders.new.csv"
	OrderEditFile         = "InputFolder/orders.edit.csv"
	OrderDeleteFile       = "InputFolder/orders.delete.csv"
	OrderOutputFile       = "OutputFolder/orders.output.csv"
	SearchProductIDFile   = "InputFolder/productIds.search.csv"
	ErrorFile             = "OutputFolder/error.output.txt"
)
