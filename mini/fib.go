package mini

// Fib returns the n-th Fibonacci number, with Fib(0) = 0 and Fib(1) = 1.
// Negative n returns 0. It does not touch the bus.
func Fib(n int) int {
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}
