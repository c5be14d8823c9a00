package relay

// Delivery tracks one forwarded message until its reply is sent or fails.
type Delivery struct {
	ID       string
	SenderID string

	done  chan struct{}
	reply string
	err   error
}

func newDelivery(id, senderID string) *Delivery {
	return &Delivery{
		ID:       id,
		SenderID: senderID,
		done:     make(chan struct{}),
	}
}

func (d *Delivery) finish(reply string, err error) {
	d.reply = reply
	d.err = err
	close(d.done)
}

// Done is closed once the delivery has finished.
func (d *Delivery) Done() <-chan struct{} {
	return d.done
}

// Err returns the failure of a finished delivery. It is nil until Done is closed.
func (d *Delivery) Err() error {
	select {
	case <-d.done:
		return d.err
	default:
		return nil
	}
}

// Reply returns the text sent to the user, or "" if nothing was sent.
func (d *Delivery) Reply() string {
	select {
	case <-d.done:
		return d.reply
	default:
		return ""
	}
}
