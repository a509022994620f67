package entities

import "time"

// LotteryPool holds the accumulated prize pool and the outstanding tickets
// for the current draw period. It persists across draws; tickets are cleared
// after every draw.
type LotteryPool struct {
	Amount     int64
	Tickets    map[int64][]*LotteryTicket
	LastDrawAt time.Time
	NextDrawAt time.Time
}

// NewLotteryPool creates an empty pool with the given starting amount.
func NewLotteryPool(amount int64) *LotteryPool {
	return &LotteryPool{
		Amount:  amount,
		Tickets: make(map[int64][]*LotteryTicket),
	}
}

// AddTicket appends a ticket to its owner's list.
func (p *LotteryPool) AddTicket(ticket *LotteryTicket) {
	p.Tickets[ticket.OwnerID] = append(p.Tickets[ticket.OwnerID], ticket)
}

// TicketCount returns the total number of outstanding tickets.
func (p *LotteryPool) TicketCount() int {
	count := 0
	for _, tickets := range p.Tickets {
		count += len(tickets)
	}
	return count
}

// TicketsByUser returns the outstanding tickets for one user.
func (p *LotteryPool) TicketsByUser(userID int64) []*LotteryTicket {
	return p.Tickets[userID]
}

// ClearTickets removes all outstanding tickets.
func (p *LotteryPool) ClearTickets() {
	p.Tickets = make(map[int64][]*LotteryTicket)
}

// DrawDue reports whether the scheduled draw time has been reached.
func (p *LotteryPool) DrawDue(now time.Time) bool {
	return !p.NextDrawAt.IsZero() && !now.Before(p.NextDrawAt)
}
