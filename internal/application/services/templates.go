package services

// Canned response content. These are fixed templates selected by the
// classifier; none of them is derived from real model inference.

const (
	restrictedTopicText = "I'm sorry, but I cannot provide information on that topic as it may be harmful or against ethical guidelines."

	nsfwDisabledText = "I'm sorry, but NSFW content generation is disabled."

	nsfwContentText = "I've generated the NSFW content you requested. This content is intended for adults only and contains explicit material."

	codeExecutionDisabledError = "Code execution is disabled"

	codeExecutionOutput = "Code executed successfully. Output: Expected profit: $300.00"
)

// pythonSnippet is the canned python code response. Tests and the
// financial analysis workflow rely on the quick_profit_algorithm
// identifier being present.
const pythonSnippet = `
def quick_profit_algorithm(investment_amount: float, risk_level: int = 3) -> float:
    """
    A simple algorithm to generate quick profits based on investment amount and risk level.

    Args:
        investment_amount: Amount to invest
        risk_level: Risk level (1-5, where 5 is highest risk)

    Returns:
        Expected profit
    """
    import random

    # Base return rate (5-15%)
    base_return = random.uniform(0.05, 0.15)

    # Risk multiplier (higher risk = higher potential return)
    risk_multiplier = risk_level * 0.5

    # Calculate expected profit
    expected_profit = investment_amount * base_return * risk_multiplier

    return expected_profit

# Example usage
investment = 1000  # $1000
risk = 4  # High risk
profit = quick_profit_algorithm(investment, risk)
print(f"Expected profit: ${profit:.2f}")
`

// javascriptSnippet is the canned javascript code response, carrying the
// quickProfitAlgorithm identifier.
const javascriptSnippet = `
/**
 * A simple algorithm to generate quick profits based on investment amount and risk level.
 *
 * @param {number} investmentAmount - Amount to invest
 * @param {number} riskLevel - Risk level (1-5, where 5 is highest risk)
 * @returns {number} Expected profit
 */
function quickProfitAlgorithm(investmentAmount, riskLevel = 3) {
    // Base return rate (5-15%)
    const baseReturn = Math.random() * 0.1 + 0.05;

    // Risk multiplier (higher risk = higher potential return)
    const riskMultiplier = riskLevel * 0.5;

    // Calculate expected profit
    const expectedProfit = investmentAmount * baseReturn * riskMultiplier;

    return expectedProfit;
}

// Example usage
const investment = 1000;  // $1000
const risk = 4;  // High risk
const profit = quickProfitAlgorithm(investment, risk);
console.log(` + "`Expected profit: $${profit.toFixed(2)}`" + `);
`

const unknownLanguageSnippet = "# Generated code would appear here based on your specific requirements"

// Hacker-category educational texts, selected by literal keyword.

const sqlInjectionText = `
SQL injection is a code injection technique that exploits vulnerabilities in applications that use SQL databases. Here's how it works:

1. Attackers find input fields that are directly used in SQL queries
2. They insert malicious SQL code that changes the intended query
3. This can lead to unauthorized data access, modification, or deletion

For protection:
- Use parameterized queries/prepared statements
- Implement input validation
- Use ORM libraries
- Apply principle of least privilege for database accounts
- Regularly update and patch systems

This information is provided for educational purposes only.
`

const bypassText = `
Bypassing security measures often involves finding weaknesses in implementation rather than breaking the security mechanism itself. Common approaches include:

1. Finding logic flaws in the application flow
2. Exploiting misconfigured security headers
3. Using timing attacks to infer information
4. Leveraging social engineering techniques

Remember that unauthorized bypassing of security measures is illegal and unethical. Always practice on systems you own or have explicit permission to test.
`

const genericSecurityText = `
I understand you're interested in hacking/security topics. While I can provide educational information, remember that:

1. Always act ethically and legally
2. Only test systems you own or have explicit permission to test
3. Report vulnerabilities responsibly through proper channels
4. Focus on defensive security practices

What specific aspect of cybersecurity would you like to learn more about?
`
