package funding

// RequiredMajority is the number of approvals needed to admit a newcomer
// when n distinct holders already have a stake: ceil((n+1)/2).
func RequiredMajority(n int) int {
	if n < 0 {
		n = 0
	}
	return (n + 2) / 2
}
