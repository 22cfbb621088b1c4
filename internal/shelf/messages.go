package shelf

// User-facing text.
const (
	MsgEmptyQuery    = "Please enter a search query"
	MsgSearching     = "Searching..."
	MsgNoResults     = "No books found. Try a different search."
	MsgLoadingBooks  = "Loading books..."
	MsgNoBooks       = "No books yet. Search and add some books!"
	MsgSaved         = "Book added successfully!"
	MsgConfirmDelete = "Are you sure you want to delete this book?"
	LabelUseBook     = "Use this book"
	UnknownAuthor    = "Unknown"

	prefixSearchFailed = "Failed to search books: "
	prefixListFailed   = "Failed to load books: "
	prefixSaveFailed   = "Failed to add book: "
	prefixMarkFailed   = "Failed to mark as read: "
	prefixDeleteFailed = "Failed to delete book: "

	fallbackSave   = "Failed to add book"
	fallbackUpdate = "Failed to update book"
	fallbackDelete = "Failed to delete book"
)
