package cars

import "time"

// Car is a rentable vehicle owned by a dealer.
type Car struct {
	ID        int64
	DealerID  int64
	Make      string
	Model     string
	Year      int
	Available bool
	CreatedAt time.Time
}

// Image is a Telegram photo attached to a car. FileID is the Telegram
// file id, resendable without re-uploading.
type Image struct {
	ID        int64
	FileID    string
	IsPrimary bool
}

// Summary is one row of the customer-facing availability listing.
type Summary struct {
	ID          int64
	Make        string
	Model       string
	Year        int
	DealerName  string
	PhotoFileID string
}

// Details is a car with its dealer and photos resolved.
type Details struct {
	Car              Car
	DealerName       string
	DealerTelegramID int64
	Images           []Image
}

// PrimaryImage returns the primary photo file id, or the empty string.
func (d Details) PrimaryImage() string {
	for _, img := range d.Images {
		if img.IsPrimary {
			return img.FileID
		}
	}
	return ""
}
