package db

const getUser = `
SELECT id, username, password, account_number, points, is_admin, is_founder, has_claimed_starter, wallet_address
FROM users
WHERE username = $1
`

const userCreate = `
INSERT INTO users (username, password, is_founder)
VALUES ($1, $2, $3)
RETURNING id
`

const getUserIDByUsername = `
SELECT id FROM users
WHERE username = $1
`

const setWallet = `
UPDATE users SET wallet_address = $1
WHERE id = $2
`

const setStarterClaimed = `
UPDATE users SET has_claimed_starter = TRUE
WHERE id = $1
`

const getInventory = `
SELECT i.collectible_id, c.name, c.rarity, i.quantity, i.is_claimed, i.received_via
FROM inventory AS i
JOIN collectibles AS c ON c.id = i.collectible_id
WHERE i.user_id = $1
ORDER BY c.name
`

const claimItem = `
UPDATE inventory SET is_claimed = TRUE, received_via = 'claimed'
WHERE user_id = $1 AND collectible_id = $2 AND is_claimed = FALSE
`

const lockInventory = `
SELECT quantity FROM inventory
WHERE user_id = $1 AND collectible_id = $2
FOR UPDATE
`

const decInventory = `
UPDATE inventory SET quantity = quantity - $1
WHERE user_id = $2 AND collectible_id = $3
`

const deleteInventory = `
DELETE FROM inventory
WHERE user_id = $1 AND collectible_id = $2
`

const upsertInventory = `
INSERT INTO inventory (user_id, collectible_id, quantity, received_via)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, collectible_id)
DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity
`

const getMarketplace = `
SELECT l.id, u.username, l.collectible_id, c.name, c.rarity, l.price, l.quantity
FROM listings AS l
JOIN users AS u ON u.id = l.user_id
JOIN collectibles AS c ON c.id = l.collectible_id
WHERE l.status = 'active'
ORDER BY l.created_at DESC
LIMIT $1 OFFSET $2
`

const lockActiveListingByPair = `
SELECT id FROM listings
WHERE user_id = $1 AND collectible_id = $2 AND status = 'active'
FOR UPDATE
`

const lockLatestListingByPair = `
SELECT id FROM listings
WHERE user_id = $1 AND collectible_id = $2
ORDER BY created_at DESC
LIMIT 1
FOR UPDATE
`

const reactivateListing = `
UPDATE listings SET status = 'active', price = $1, quantity = $2, created_at = NOW()
WHERE id = $3
`

const createListing = `
INSERT INTO listings (user_id, collectible_id, price, quantity, status)
VALUES ($1, $2, $3, $4, 'active')
`

const lockListing = `
SELECT user_id, collectible_id, quantity, status FROM listings
WHERE id = $1
FOR UPDATE
`

const decListing = `
UPDATE listings SET quantity = quantity - 1
WHERE id = $1
`

const markListingSold = `
UPDATE listings SET status = 'sold'
WHERE id = $1
`

const markListingCancelled = `
UPDATE listings SET status = 'cancelled'
WHERE id = $1
`

const listGrantable = `
SELECT id, name, rarity, max_supply, current_supply
FROM collectibles
WHERE current_supply < max_supply
`

const lockCollectible = `
SELECT current_supply, max_supply FROM collectibles
WHERE id = $1
FOR UPDATE
`

const incSupply = `
UPDATE collectibles SET current_supply = current_supply + 1
WHERE id = $1
`

const mintCollectible = `
INSERT INTO collectibles (name, rarity, max_supply)
VALUES ($1, $2, 1)
RETURNING id
`
