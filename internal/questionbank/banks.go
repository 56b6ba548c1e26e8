// Package questionbank holds the static question collections, one per quiz
// mode. Pure data; the content mirrors the production Concero quiz decks.
package questionbank

import "github.com/Admuad/concero-quiz/internal/domain"

// Load returns the bank for a mode, or ErrBankNotFound.
func Load(mode domain.Mode) (domain.Bank, error) {
	switch mode {
	case domain.ModePractice:
		return domain.Bank{Mode: mode, Questions: Practice()}, nil
	case domain.ModeStandard:
		return domain.Bank{Mode: mode, Questions: Standard()}, nil
	case domain.ModeTournament:
		return domain.Bank{Mode: mode, Questions: Tournament()}, nil
	}
	return domain.Bank{}, domain.ErrBankNotFound
}

// All returns every bank keyed by mode, used by the seed command.
func All() map[domain.Mode]domain.Bank {
	return map[domain.Mode]domain.Bank{
		domain.ModePractice:   {Mode: domain.ModePractice, Questions: Practice()},
		domain.ModeStandard:   {Mode: domain.ModeStandard, Questions: Standard()},
		domain.ModeTournament: {Mode: domain.ModeTournament, Questions: Tournament()},
	}
}

func Practice() []domain.Question {
	return []domain.Question{
		{
			Text: "What is Concero mainly used for?",
			Options: [4]string{"Cross-chain messaging", "Photo editing", "Social media", "Music streaming"},
			Answer: "Cross-chain messaging",
		},
		{
			Text: "Concero helps users send assets across…",
			Options: [4]string{"Different blockchains", "Different phones", "Different apps", "Different banks"},
			Answer: "Different blockchains",
		},
		{
			Text: "Concero is designed to be fast, secure and ____?",
			Options: [4]string{"Easy to use", "Expensive", "Offline", "Private"},
			Answer: "Easy to use",
		},
		{
			Text: "What happens if a Concero transfer fails?",
			Options: [4]string{"Funds return to origin chain", "Tokens vanish", "Funds get stuck", "Sent to a stranger"},
			Answer: "Funds return to origin chain",
		},
		{
			Text: "Concero liquidity providers earn rewards in…",
			Options: [4]string{"USDC", "ETH", "SOL", "BNB"},
			Answer: "USDC",
		},
		{
			Text: "How long is the cooldown for withdrawing liquidity?",
			Options: [4]string{"7 days", "1 hour", "2 weeks", "30 days"},
			Answer: "7 days",
		},
		{
			Text: "Why is Concero considered safe?",
			Options: [4]string{"Secured by Chainlink oracles", "Managed by one server", "Users vote manually", "WhatsApp verification"},
			Answer: "Secured by Chainlink oracles",
		},
		{
			Text: "Concero helps reduce the risk of ___?",
			Options: [4]string{"Bridge hacks", "Running out of storage", "Phone overheating", "Losing WiFi"},
			Answer: "Bridge hacks",
		},
		{
			Text: "Concero supports instant liquidity for fast transfers. This means…",
			Options: [4]string{"Users don’t wait for confirmations", "Transfers take days", "Users must verify manually", "A bank approves it"},
			Answer: "Users don’t wait for confirmations",
		},
		{
			Text: "Concero removes the need for gas on the destination chain by…",
			Options: [4]string{"Gas abstraction", "Giving free gas", "Skipping validation", "Borrowing gas"},
			Answer: "Gas abstraction",
		},
		{
			Text: "Concero is built for which type of transactions?",
			Options: [4]string{"Cross-chain", "Email", "Offline", "Bluetooth"},
			Answer: "Cross-chain",
		},
		{
			Text: "Concero messaging powers which platform?",
			Options: [4]string{"Lanca", "Facebook", "Spotify", "TikTok"},
			Answer: "Lanca",
		},
		{
			Text: "What is Concero’s average settlement time?",
			Options: [4]string{"~24 minutes", "1 second", "2 hours", "1 day"},
			Answer: "~24 minutes",
		},
		{
			Text: "Concero helps users avoid which common blockchain problem?",
			Options: [4]string{"Fragmentation", "Battery drain", "Slow charging", "Screen lag"},
			Answer: "Fragmentation",
		},
		{
			Text: "Concero fees are…",
			Options: [4]string{"Predictable and fixed", "Random", "Based on mood", "Unknown"},
			Answer: "Predictable and fixed",
		},
		{
			Text: "Concero uses stablecoins for liquidity pools to reduce…",
			Options: [4]string{"Volatility risk", "Graphics quality", "Network speed", "Usernames"},
			Answer: "Volatility risk",
		},
		{
			Text: "What is Lanca?",
			Options: [4]string{"Multichain DEX", "Game", "Chat app", "VPN"},
			Answer: "Multichain DEX",
		},
		{
			Text: "Lanca allows users to trade across…",
			Options: [4]string{"Multiple blockchains", "Only Ethereum", "Phone apps", "Banks"},
			Answer: "Multiple blockchains",
		},
		{
			Text: "Lanca is powered by…",
			Options: [4]string{"Concero Messaging", "Bluetooth", "Solana gossip", "Email"},
			Answer: "Concero Messaging",
		},
		{
			Text: "Which of these is supported on Lanca?",
			Options: [4]string{"Base", "Solana only", "Bitcoin only", "None"},
			Answer: "Base",
		},
	}
}

func Standard() []domain.Question {
	return []domain.Question{
		{
			Text: "How fast can Concero complete a cross-chain transfer?",
			Options: [4]string{"Under a minute", "Around 1 hour", "24 hours", "3 days"},
			Answer: "Under a minute",
		},
		{
			Text: "On average, how long does Concero settlement through Chainlink CCIP take?",
			Options: [4]string{"1 minute", "24 minutes", "2 hours", "1 day"},
			Answer: "24 minutes",
		},
		{
			Text: "What is the Concero protocol fee per transaction?",
			Options: [4]string{"0.01%", "0.05%", "0.1%", "1%"},
			Answer: "0.1%",
		},
		{
			Text: "What asset is primarily used for liquidity pools in Concero v1?",
			Options: [4]string{"ETH", "USDC", "LINK", "BTC"},
			Answer: "USDC",
		},
		{
			Text: "Liquidity providers on Concero earn fees in what token (v1)?",
			Options: [4]string{"ETH", "LINK", "USDC", "Concero token"},
			Answer: "USDC",
		},
		{
			Text: "How long is the cooldown period for withdrawing liquidity on Concero?",
			Options: [4]string{"1 day", "3 days", "7 days", "14 days"},
			Answer: "7 days",
		},
		{
			Text: "Why is Concero’s gas abstraction feature important for users?",
			Options: [4]string{"It lowers internet costs", "Users don’t need destination chain gas", "It makes graphics better", "It removes passwords"},
			Answer: "Users don’t need destination chain gas",
		},
		{
			Text: "What are the three main attributes Concero was designed around?",
			Options: [4]string{"Speed, Security, Ease of Use", "Price, Marketing, Team", "NFTs, DeFi, Gaming", "Community, Branding, Treasury"},
			Answer: "Speed, Security, Ease of Use",
		},
		{
			Text: "What technology does Concero use to secure cross-chain messages?",
			Options: [4]string{"Chainlink CCIP", "WhatsApp", "Polygon SDK", "Solana Bridge"},
			Answer: "Chainlink CCIP",
		},
		{
			Text: "Concero guarantees finality of transactions by relying on ___?",
			Options: [4]string{"Validators", "Chainlink nodes", "Oracle reports", "Manual checks"},
			Answer: "Chainlink nodes",
		},
		{
			Text: "Which stablecoin does Concero v1 rely on for its liquidity pool?",
			Options: [4]string{"DAI", "USDC", "Tether (USDT)", "BUSD"},
			Answer: "USDC",
		},
		{
			Text: "What is the minimum gas requirement for users on Concero?",
			Options: [4]string{"Only on the origin chain", "Both chains", "Destination chain only", "No gas required anywhere"},
			Answer: "Only on the origin chain",
		},
		{
			Text: "Concero aims to solve which major blockchain problem?",
			Options: [4]string{"Internet speed", "Cross-chain fragmentation", "Phone storage", "Social media spam"},
			Answer: "Cross-chain fragmentation",
		},
		{
			Text: "Concero transactions can often be completed in how long?",
			Options: [4]string{"Less than a minute", "About 1 hour", "3 hours", "1 day"},
			Answer: "Less than a minute",
		},
		{
			Text: "What do liquidity providers contribute to Concero pools?",
			Options: [4]string{"Memecoins", "Stablecoins like USDC", "ETH only", "NFTs"},
			Answer: "Stablecoins like USDC",
		},
		{
			Text: "How often can liquidity providers withdraw rewards?",
			Options: [4]string{"Instantly", "After 7-day cooldown", "Once a year", "Never"},
			Answer: "After 7-day cooldown",
		},
		{
			Text: "How does Concero achieve fast cross-chain transfers?",
			Options: [4]string{"By guessing transactions", "Using Chainlink CCIP messaging", "By sending screenshots", "By using email servers"},
			Answer: "Using Chainlink CCIP messaging",
		},
		{
			Text: "What ensures that Concero transfers are secure?",
			Options: [4]string{"A single server", "Chainlink decentralized oracle network", "Twitter bots", "VPNs"},
			Answer: "Chainlink decentralized oracle network",
		},
		{
			Text: "Concero abstracts gas fees by allowing users to ___?",
			Options: [4]string{"Borrow free gas from banks", "Only pay gas on the origin chain", "Avoid gas completely", "Pay gas in Bitcoin"},
			Answer: "Only pay gas on the origin chain",
		},
		{
			Text: "What happens if a Concero transfer fails?",
			Options: [4]string{"Tokens are locked forever", "Funds are returned to the origin chain", "Tokens are given to random users", "No one knows"},
			Answer: "Funds are returned to the origin chain",
		},
		{
			Text: "Concero’s liquidity pools reduce risk by using which token standard?",
			Options: [4]string{"Volatile memecoins", "Stablecoins like USDC", "NFTs", "ETH only"},
			Answer: "Stablecoins like USDC",
		},
		{
			Text: "Why is Concero faster than traditional bridges?",
			Options: [4]string{"Because it uses centralized custody", "It relies on decentralized messaging & instant liquidity", "It skips blockchain verification", "It’s only marketing"},
			Answer: "It relies on decentralized messaging & instant liquidity",
		},
	}
}

func Tournament() []domain.Question {
	return []domain.Question{
		{
			Text: "What is the core reason Concero avoids traditional lock-and-mint bridge risks?",
			Options: [4]string{"It uses instant liquidity instead of token wrapping", "It removes private keys", "It relies on centralized custody", "It disables bridging entirely"},
			Answer: "It uses instant liquidity instead of token wrapping",
		},
		{
			Text: "Concero's gas abstraction is achieved primarily by:",
			Options: [4]string{"Executing destination transactions on behalf of the user", "Charging zero gas globally", "Bundling user signatures", "Bridging gas tokens"},
			Answer: "Executing destination transactions on behalf of the user",
		},
		{
			Text: "Which layer of Chainlink CCIP does Concero rely on for its security guarantees?",
			Options: [4]string{"The DON (Decentralized Oracle Network) security model", "The staking-slashing module", "The VRF coordinator", "The Keeper Network"},
			Answer: "The DON (Decentralized Oracle Network) security model",
		},
		{
			Text: "Concero’s 24-minute settlement time is primarily determined by:",
			Options: [4]string{"Oracle rate limits and CCIP reporting intervals", "Blockchain congestion only", "User device speed", "Validator committee rotation"},
			Answer: "Oracle rate limits and CCIP reporting intervals",
		},
		{
			Text: "What prevents double spending during Concero cross-chain operations?",
			Options: [4]string{"CCIP’s message replay protection", "Manual admin approvals", "IP tracking", "Batch signatures"},
			Answer: "CCIP’s message replay protection",
		},
		{
			Text: "Which component ensures atomicity between source and destination chain transfers on Concero?",
			Options: [4]string{"CCIP execution semantics", "Merkle proofs", "SNARK circuits", "IBC channels"},
			Answer: "CCIP execution semantics",
		},
		{
			Text: "How does Concero minimize slippage during cross-chain swaps?",
			Options: [4]string{"Using unified stablecoin liquidity", "Allowing volatile pairs", "Using AMM v1 only", "Lowering fees"},
			Answer: "Using unified stablecoin liquidity",
		},
		{
			Text: "What happens if a user sends invalid data through Concero messaging?",
			Options: [4]string{"Message is rejected by the DON quorum", "Funds are lost", "Execution still proceeds", "Validators manually correct it"},
			Answer: "Message is rejected by the DON quorum",
		},
		{
			Text: "Concero's cross-chain finality depends on:",
			Options: [4]string{"Multi-chain oracle consensus", "User confirmations", "L2 sequencer speed", "Validator uptime"},
			Answer: "Multi-chain oracle consensus",
		},
		{
			Text: "In Concero’s model, which entity is responsible for executing destination chain transactions?",
			Options: [4]string{"The CCIP router", "User’s wallet", "Remote RPC endpoints", "Sequencer nodes"},
			Answer: "The CCIP router",
		},
		{
			Text: "How does Lanca achieve fast cross-chain swaps?",
			Options: [4]string{"Concero messaging + instant liquidity routing", "Relayer-only bridges", "Batching swaps weekly", "Chain-specific validators"},
			Answer: "Concero messaging + instant liquidity routing",
		},
		{
			Text: "What is Lanca's main advantage over traditional DEX aggregators?",
			Options: [4]string{"Access to liquidity across multiple chains simultaneously", "Lower UI complexity", "No RPC usage", "Cheaper token listings"},
			Answer: "Access to liquidity across multiple chains simultaneously",
		},
		{
			Text: "Why doesn't Lanca rely on wrapped assets like wETH or wUSDC?",
			Options: [4]string{"Concero provides native liquidity on each chain", "Wrapped tokens are illegal", "RPC limits prevent wrapping", "Lanca doesn’t support wrapping"},
			Answer: "Concero provides native liquidity on each chain",
		},
		{
			Text: "Which factor MOST reduces systemic risk in Lanca?",
			Options: [4]string{"Avoidance of lock-mint bridges", "Weekly audits", "User KYC", "Multi-wallet login"},
			Answer: "Avoidance of lock-mint bridges",
		},
		{
			Text: "Why does Lanca require accurate price feeds?",
			Options: [4]string{"To route swaps across chains without arbitrage loss", "To rank users", "To generate memes", "To set gas prices manually"},
			Answer: "To route swaps across chains without arbitrage loss",
		},
		{
			Text: "How does Lanca maintain liquidity depth across chains?",
			Options: [4]string{"Concero unified stablecoin pool", "Daily rebalancing bots", "Partnered custodians", "Hybrid MPC wallets"},
			Answer: "Concero unified stablecoin pool",
		},
		{
			Text: "When bridging through Lanca, what ensures secure message passing?",
			Options: [4]string{"Concero CCIP integration", "User multisigs", "RPC batching", "Manual checkpoints"},
			Answer: "Concero CCIP integration",
		},
		{
			Text: "What prevents a swap on Lanca from executing on the wrong chain?",
			Options: [4]string{"ChainID verification inside CCIP payloads", "Browser fingerprinting", "Randomized routing", "Gas fee throttling"},
			Answer: "ChainID verification inside CCIP payloads",
		},
		{
			Text: "What is the most common source of bridge hacks historically?",
			Options: [4]string{"Compromised multisig or validator keys", "High gas fees", "Slow RPC", "User typos"},
			Answer: "Compromised multisig or validator keys",
		},
		{
			Text: "Why do wrapped assets create systemic cross-chain risk?",
			Options: [4]string{"Their value depends on a custodian not being hacked", "They are illegal in some regions", "They always depeg", "They rely on meme coins"},
			Answer: "Their value depends on a custodian not being hacked",
		},
	}
}

